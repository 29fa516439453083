// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vlp-tools/vlp/internal/archive"
	"github.com/vlp-tools/vlp/internal/lockscreen"
)

const (
	// InnerArchiveName is the intermediate archive of the lockscreen/ tree.
	InnerArchiveName = "lockscreen.zip"
	// ContainerName is the assembled container inside the published artifact.
	ContainerName = "lockscreen.itz"
)

const (
	// StepStageInner packs the lockscreen/ tree in place.
	StepStageInner Step = iota + 1
	// StepPatchMetadata stamps description.xml with the version number.
	StepPatchMetadata
	// StepAssemble builds the .itz container.
	StepAssemble
	// StepWrap re-packs the container under the published name.
	StepWrap
)

var errNoBackend = errors.New("no archive backend configured")

type (
	// Step identifies one stage of Run.
	Step int

	// VersionSource hands out version numbers. Run calls Next exactly once.
	VersionSource interface {
		Next() string
	}

	// DescriptionPatcher stamps a description file with a version number and
	// must leave the file untouched when it fails.
	DescriptionPatcher interface {
		Patch(path, number string) error
	}

	// PatcherFunc adapts a function to DescriptionPatcher.
	PatcherFunc func(path, number string) error

	// Options configure a pipeline run.
	Options struct {
		// Input is the lockscreen package directory, already validated.
		Input string
		// OutputDir receives the published artifact. It must exist.
		OutputDir string
		// Backend builds the archives. Required.
		Backend archive.Backend
		// Versions defaults to a time-seeded lockscreen.Generator.
		Versions VersionSource
		// Patcher defaults to lockscreen.PatchDescription.
		Patcher DescriptionPatcher
		// Logger defaults to a discarding logger.
		Logger *log.Logger
		// Progress, when set, is called as each step starts.
		Progress func(Step)
	}

	// Result describes a finished run.
	Result struct {
		// Output is the absolute path of the published artifact.
		Output string
		// Number is the version number stamped into the package.
		Number string
		// Container is the entry name of the container inside Output.
		Container string
	}

	// StepError attributes a failure to the step that produced it.
	StepError struct {
		Step Step
		Err  error
	}
)

// Patch implements DescriptionPatcher.
func (f PatcherFunc) Patch(path, number string) error { return f(path, number) }

// String returns a short description of the step.
func (s Step) String() string {
	switch s {
	case StepStageInner:
		return "stage lockscreen archive"
	case StepPatchMetadata:
		return "patch description.xml"
	case StepAssemble:
		return "assemble container"
	case StepWrap:
		return "wrap artifact"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Error implements the error interface.
func (e *StepError) Error() string { return e.Step.String() + ": " + e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *StepError) Unwrap() error { return e.Err }

// Run executes the packaging pipeline.
func Run(ctx context.Context, opts Options) (res *Result, err error) {
	if opts.Backend == nil {
		return nil, errNoBackend
	}
	opts = withDefaults(opts)
	logger := opts.Logger

	input, err := filepath.Abs(opts.Input)
	if err != nil {
		return nil, archive.NewIOError("resolve input", opts.Input, err)
	}
	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, archive.NewIOError("resolve output", opts.OutputDir, err)
	}

	stage, err := archive.NewStagingArea()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err = closeArea(stage, err); err != nil {
			res = nil
		}
	}()

	dist, err := archive.NewStagingArea()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err = closeArea(dist, err); err != nil {
			res = nil
		}
	}()

	logger.Debug("staging areas ready", "stage", stage.Root(), "dist", dist.Root())

	innerZip := stage.Path(InnerArchiveName)
	description := stage.Path(lockscreen.DescriptionFile)
	container := dist.Path(ContainerName)
	artifact := lockscreen.ArtifactPath(outputDir)

	opts.progress(StepStageInner)
	inner, err := archive.NewEntry("", filepath.Join(input, lockscreen.LockscreenDir))
	if err != nil {
		return nil, &StepError{Step: StepStageInner, Err: err}
	}
	if err := inner.InPlace().Build(ctx, opts.Backend, innerZip); err != nil {
		return nil, &StepError{Step: StepStageInner, Err: err}
	}
	logger.Debug("inner archive built", "path", innerZip)

	opts.progress(StepPatchMetadata)
	if err := archive.CopyFile(filepath.Join(input, lockscreen.DescriptionFile), description); err != nil {
		return nil, &StepError{Step: StepPatchMetadata, Err: err}
	}
	number := opts.Versions.Next()
	if err := opts.Patcher.Patch(description, number); err != nil {
		return nil, &StepError{Step: StepPatchMetadata, Err: patchError(filepath.Join(input, lockscreen.DescriptionFile), err)}
	}
	logger.Debug("description stamped", "number", number)

	opts.progress(StepAssemble)
	set, err := outerSet(input, innerZip, description, number)
	if err != nil {
		return nil, &StepError{Step: StepAssemble, Err: err}
	}
	if err := set.BuildAndRename(ctx, opts.Backend, container); err != nil {
		return nil, &StepError{Step: StepAssemble, Err: err}
	}
	logger.Debug("container assembled", "path", container)

	opts.progress(StepWrap)
	if working := archive.WorkingPath(artifact); fileExists(working) {
		logger.Warn("replacing existing file in output directory", "path", working)
	}
	wrapped, err := archive.NewEntry("", container)
	if err != nil {
		return nil, &StepError{Step: StepWrap, Err: err}
	}
	if err := wrapped.InPlace().BuildAndRename(ctx, opts.Backend, artifact); err != nil {
		return nil, &StepError{Step: StepWrap, Err: err}
	}
	logger.Info("package built", "output", artifact, "number", number)

	return &Result{Output: artifact, Number: number, Container: ContainerName}, nil
}

// outerSet lists the container's content: the inner archive under
// lockscreen/<number>.zip, the preview tree and the stamped description.
func outerSet(input, innerZip, description, number string) (*archive.Set, error) {
	innerEntry, err := archive.NewEntry(lockscreen.LockscreenDir+"/"+number+".zip", innerZip)
	if err != nil {
		return nil, err
	}
	previewEntry, err := archive.NewEntry("", filepath.Join(input, lockscreen.PreviewDir))
	if err != nil {
		return nil, err
	}
	descEntry, err := archive.NewEntry("", description)
	if err != nil {
		return nil, err
	}
	return archive.NewSet(innerEntry, previewEntry, descEntry), nil
}

func withDefaults(opts Options) Options {
	if opts.Versions == nil {
		opts.Versions = lockscreen.NewGenerator()
	}
	if opts.Patcher == nil {
		opts.Patcher = PatcherFunc(lockscreen.PatchDescription)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}

func (o Options) progress(s Step) {
	if o.Progress != nil {
		o.Progress(s)
	}
}

// closeArea releases a staging area, reporting its error only when the run
// had not already failed.
func closeArea(area *archive.StagingArea, err error) error {
	if closeErr := area.Close(); closeErr != nil && err == nil {
		return closeErr
	}
	return err
}

// patchError reports a failed stamp against the source description. The
// staged copy is gone by the time the error reaches the user.
func patchError(source string, err error) error {
	var tagErr *lockscreen.TagNotFoundError
	if errors.As(err, &tagErr) {
		tagErr.Path = source
		return archive.NewIOError("patch description", "", err)
	}
	return archive.NewIOError("patch description", source, err)
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
