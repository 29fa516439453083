// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// SpinnerVLP is the braille wave vlp has always shown.
	SpinnerVLP SpinnerType = iota
	// SpinnerLine is a simple line spinner.
	SpinnerLine
	// SpinnerDot is a dot spinner.
	SpinnerDot
	// SpinnerMiniDot is a mini dot spinner.
	SpinnerMiniDot
	// SpinnerJump is a jumping spinner.
	SpinnerJump
	// SpinnerPulse is a pulsing spinner.
	SpinnerPulse
	// SpinnerPoints is a points spinner.
	SpinnerPoints
	// SpinnerGlobe is a globe spinner.
	SpinnerGlobe
	// SpinnerMoon is a moon phases spinner.
	SpinnerMoon
	// SpinnerMonkey is a monkey spinner.
	SpinnerMonkey
	// SpinnerMeter is a meter spinner.
	SpinnerMeter
	// SpinnerHamburger is a hamburger spinner.
	SpinnerHamburger
	// SpinnerEllipsis is an ellipsis spinner.
	SpinnerEllipsis

	keyCtrlC = "ctrl+c"
)

var (
	// ErrInvalidSpinnerType is the sentinel error wrapped by InvalidSpinnerTypeError.
	ErrInvalidSpinnerType = errors.New("invalid spinner type")

	// ErrInterrupted is returned by Spin when the user pressed Ctrl+C while
	// the spinner owned the terminal.
	ErrInterrupted = errors.New("interrupted")

	vlpSpinner = bspinner.Spinner{
		Frames: []string{"⢎ ", "⠎⠁", "⠊⠑", "⠈⠱", " ⡱", "⢀⡰", "⢄⡠", "⢆⡀"},
		FPS:    80 * time.Millisecond,
	}

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
)

type (
	// SpinnerType represents the type of spinner animation.
	SpinnerType int

	// InvalidSpinnerTypeError is returned when a SpinnerType value is not
	// one of the defined spinner types.
	InvalidSpinnerTypeError struct {
		Value SpinnerType
	}

	// SpinOptions configures Spin.
	SpinOptions struct {
		// Title is the text displayed next to the spinner.
		Title string
		// Type specifies the spinner animation type.
		Type SpinnerType
		// Disabled runs the action without drawing anything.
		Disabled bool
		// Output receives the rendering (default os.Stderr).
		Output io.Writer
		// Input is read for key presses (default os.Stdin).
		Input io.Reader
	}

	// StatusFunc replaces the spinner title while the action runs.
	StatusFunc func(title string)

	// spinModel displays a spinner until the action reports completion.
	spinModel struct {
		title       string
		spinner     bspinner.Model
		done        bool
		interrupted bool
	}

	statusMsg string

	spinDoneMsg struct{}
)

// Error implements the error interface.
func (e *InvalidSpinnerTypeError) Error() string {
	return fmt.Sprintf("invalid spinner type %d (valid: %s)",
		e.Value, strings.Join(SpinnerTypeNames(), ", "))
}

// Unwrap returns ErrInvalidSpinnerType so callers can use errors.Is for programmatic detection.
func (e *InvalidSpinnerTypeError) Unwrap() error { return ErrInvalidSpinnerType }

// Validate returns nil if the SpinnerType is one of the defined spinner types.
func (t SpinnerType) Validate() error {
	if t < SpinnerVLP || t > SpinnerEllipsis {
		return &InvalidSpinnerTypeError{Value: t}
	}
	return nil
}

// String returns the name of the SpinnerType (e.g., "vlp", "dot").
// Unknown values return "unknown(<N>)" for diagnostic safety.
func (t SpinnerType) String() string {
	names := SpinnerTypeNames()
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("unknown(%d)", t)
}

// ParseSpinnerType parses a string into a SpinnerType.
func ParseSpinnerType(s string) (SpinnerType, error) {
	for i, name := range SpinnerTypeNames() {
		if name == s {
			return SpinnerType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown spinner type %q (valid: %s)", s, strings.Join(SpinnerTypeNames(), ", "))
}

// SpinnerTypeNames returns the available spinner type names, indexed by SpinnerType.
func SpinnerTypeNames() []string {
	return []string{
		"vlp", "line", "dot", "minidot", "jump", "pulse", "points",
		"globe", "moon", "monkey", "meter", "hamburger", "ellipsis",
	}
}

// frames converts SpinnerType to bubbles spinner frames.
func (t SpinnerType) frames() bspinner.Spinner {
	switch t {
	case SpinnerLine:
		return bspinner.Line
	case SpinnerDot:
		return bspinner.Dot
	case SpinnerMiniDot:
		return bspinner.MiniDot
	case SpinnerJump:
		return bspinner.Jump
	case SpinnerPulse:
		return bspinner.Pulse
	case SpinnerPoints:
		return bspinner.Points
	case SpinnerGlobe:
		return bspinner.Globe
	case SpinnerMoon:
		return bspinner.Moon
	case SpinnerMonkey:
		return bspinner.Monkey
	case SpinnerMeter:
		return bspinner.Meter
	case SpinnerHamburger:
		return bspinner.Hamburger
	case SpinnerEllipsis:
		return bspinner.Ellipsis
	default:
		return vlpSpinner
	}
}

func newSpinModel(opts SpinOptions) spinModel {
	return spinModel{
		title: opts.Title,
		spinner: bspinner.New(
			bspinner.WithSpinner(opts.Type.frames()),
			bspinner.WithStyle(spinnerStyle),
		),
	}
}

// Init implements tea.Model.
func (m spinModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bspinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusMsg:
		m.title = string(msg)
		return m, nil
	case spinDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			m.interrupted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model. The line is cleared once the action is done.
func (m spinModel) View() string {
	if m.done || m.interrupted {
		return ""
	}
	content := m.spinner.View()
	if m.title != "" {
		content += " " + m.title
	}
	return content
}

// Spin runs action while a spinner is drawn on opts.Output and returns the
// action's error. Ctrl+C cancels the context handed to action; Spin still
// waits for action to return.
func Spin(ctx context.Context, opts SpinOptions, action func(ctx context.Context, status StatusFunc) error) error {
	if opts.Disabled {
		return action(ctx, func(string) {})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(outputOrStderr(opts.Output)),
		tea.WithoutSignalHandler(),
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	program := tea.NewProgram(newSpinModel(opts), programOpts...)

	var actionErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		actionErr = action(ctx, func(title string) { program.Send(statusMsg(title)) })
		program.Send(spinDoneMsg{})
	}()

	final, runErr := program.Run()
	if m, ok := final.(spinModel); ok && m.interrupted {
		cancel()
		<-done
		return errors.Join(ErrInterrupted, actionErr)
	}
	cancel()
	<-done

	if actionErr != nil {
		return actionErr
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("render spinner: %w", runErr)
	}
	return nil
}
