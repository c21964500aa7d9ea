package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// Shimmer animates a soft highlight sweeping across the selected row's
// name. Terminals without truecolor get a static accent color instead.
type Shimmer struct {
	center     float64
	lastUpdate time.Time
	active     bool
	truecolor  bool

	// tuning
	speed      time.Duration // time between position updates
	widthRatio float64       // highlight width as a fraction of the text
	cycleMs    int           // full sweep duration in ms
}

// NewShimmer creates a shimmer in its default configuration.
func NewShimmer() *Shimmer {
	return &Shimmer{
		lastUpdate: time.Now(),
		active:     true,
		truecolor:  os.Getenv("COLORTERM") == "truecolor",
		speed:      100 * time.Millisecond,
		widthRatio: 0.25,
		cycleMs:    1800,
	}
}

// TickInterval is the interval for tea.Tick commands.
func (s *Shimmer) TickInterval() time.Duration {
	return s.speed
}

// ShouldTick reports whether the animation is running.
func (s *Shimmer) ShouldTick() bool {
	return s.active
}

// SetActive starts or stops the animation.
func (s *Shimmer) SetActive(active bool) {
	s.active = active
}

// Reset restarts the sweep (call when the selection changes).
func (s *Shimmer) Reset() {
	s.center = 0
	s.lastUpdate = time.Now()
}

// advance moves the highlight center along the text.
func (s *Shimmer) advance(textLen int) {
	if !s.active || textLen <= 0 {
		return
	}
	now := time.Now()
	if now.Sub(s.lastUpdate) < s.speed {
		return
	}

	ticksPerCycle := float64(s.cycleMs) / float64(s.speed.Milliseconds())
	distance := float64(textLen) * (1.0 + 2.0*s.widthRatio)
	s.center += distance / ticksPerCycle

	if s.center >= float64(textLen)*(1.0+s.widthRatio) {
		s.center = -float64(textLen) * s.widthRatio
	}
	s.lastUpdate = now
}

// Render draws text with the shimmer highlight applied.
func (s *Shimmer) Render(text string, maxWidth int) string {
	if len(text) > maxWidth && maxWidth > 3 {
		text = text[:maxWidth-3] + "..."
	}
	if text == "" {
		return ""
	}

	s.advance(len(text))

	if !s.active || !s.truecolor {
		// Static accent highlight (ColorAccentBright)
		return fmt.Sprintf("\033[38;2;94;234;212m%s\033[0m", text)
	}

	// Base #AFC7BF, highlight #D9FFF4, blended along a Gaussian curve
	// centered on the sweep position.
	baseR, baseG, baseB := 175, 199, 191
	hiR, hiG, hiB := 217, 255, 244

	sigma := s.widthRatio * float64(len(text)) / 2.0
	if sigma < 1.0 {
		sigma = 1.0
	}

	var b strings.Builder
	for i, char := range text {
		dx := float64(i) - s.center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))

		r := int(float64(baseR)*(1-weight) + float64(hiR)*weight)
		g := int(float64(baseG)*(1-weight) + float64(hiG)*weight)
		bl := int(float64(baseB)*(1-weight) + float64(hiB)*weight)
		fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", r, g, bl, char)
	}
	b.WriteString("\033[0m")
	return b.String()
}
