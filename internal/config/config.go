// Package config holds the run-wide configuration record. Several fields
// are forwarded to the external frontend/build driver and are never
// consulted by the core itself; they are still modeled here because a real
// driver binary needs somewhere to put them before handing the rest of the
// record to the pipeline.
package config

// CompilationArguments is forwarded to the frontend unmodified.
type CompilationArguments struct {
	AbsoluteFilePathsAndOtherArguments []string `yaml:"absoluteFilePathsAndOtherArguments"`
}

// Config is the configuration record a run is parameterized by.
type Config struct {
	// IndentationString is inserted once per nesting level by the emitter.
	IndentationString string `yaml:"indentationString"`

	// DefaultsToFinal: when true, declarations whose openness the Open
	// pass can't otherwise determine default to non-open.
	DefaultsToFinal bool `yaml:"defaultsToFinal"`

	// TargetVersion and ToolchainName are opaque strings forwarded to the
	// frontend; the core never branches on them.
	TargetVersion string `yaml:"targetVersion"`
	ToolchainName string `yaml:"toolchainName"`

	// XcodeProjectPath, Target, and CompilationArguments are forwarded to
	// the external build driver; the core never consults them.
	XcodeProjectPath     string               `yaml:"xcodeProjectPath"`
	Target               string               `yaml:"target"`
	CompilationArguments CompilationArguments `yaml:"compilationArguments"`
}

// Default returns the configuration a fresh run starts from absent any
// project file: tabs for indentation, opinionated and safe defaults for
// the flags the core does consult.
func Default() Config {
	return Config{
		IndentationString: "\t",
		DefaultsToFinal:   true,
	}
}
