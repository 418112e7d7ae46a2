package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "with status bar",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, StatusBarHeight: 1},
			want:         38,
		},
		{
			name:         "tiny window",
			windowHeight: 1,
			opts:         ContentOpts{HeaderHeight: 1, StatusBarHeight: 1},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHeight(tt.windowHeight, tt.opts); got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	if !IsNarrowMode(99) {
		t.Error("IsNarrowMode(99) = false, want true")
	}
	if IsNarrowMode(100) {
		t.Error("IsNarrowMode(100) = true, want false")
	}
}

func TestViewerPanes(t *testing.T) {
	tests := []struct {
		name                       string
		width, height              int
		stacked                    bool
		pageW, pageH, textW, textH int
	}{
		{"side by side even", 120, 40, false, 60, 40, 60, 40},
		{"side by side odd", 121, 40, false, 60, 40, 61, 40},
		{"stacked", 80, 41, true, 80, 20, 80, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, ph, tw, th := ViewerPanes(tt.width, tt.height, tt.stacked)
			if pw != tt.pageW || ph != tt.pageH || tw != tt.textW || th != tt.textH {
				t.Errorf("ViewerPanes() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					pw, ph, tw, th, tt.pageW, tt.pageH, tt.textW, tt.textH)
			}
		})
	}
}
