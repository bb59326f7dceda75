package config

const (
	defaultFontSize    = 18
	defaultCanvasWidth = 480
)

type CalendarConfig struct {
	Font       string  `yaml:"font-path"`
	Size       float64 `yaml:"font-size"`
	CanvasSize int     `yaml:"width"`
}

func (s *CalendarConfig) setDefaults() {
	if s.Size <= 0 {
		s.Size = defaultFontSize
	}
	if s.CanvasSize <= 0 {
		s.CanvasSize = defaultCanvasWidth
	}
}

// FontPath is a TTF file, empty means the built-in face (no CJK glyphs).
func (s *CalendarConfig) FontPath() string {
	return s.Font
}

func (s *CalendarConfig) FontSize() float64 {
	return s.Size
}

func (s *CalendarConfig) Width() int {
	return s.CanvasSize
}
