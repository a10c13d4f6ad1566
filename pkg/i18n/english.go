package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	Description      string
	InpathHelp       string
	ConfigFlagHelp   string
	DebugFlagHelp    string
	KindFlagHelp     string
	FailFastFlagHelp string
	NoPrecheckHelp   string
	BacktraceHelp    string

	PathColumn   string
	KindColumn   string
	SizeColumn   string
	DetailColumn string

	EntriesDetail string
	LinesDetail   string
	NoDetail      string

	EmptyInpathError string
	UnknownFlagError string
	PrecheckFailed   string
	InputFailed      string
	InputsFailed     string
	InspectionDone   string

	UsageTitle     string
	ArgumentsTitle string
	FlagsTitle     string
}

func englishSet() TranslationSet {
	return TranslationSet{
		Description:      "Checks each input path at the moment it is used, never trusting an earlier check",
		InpathHelp:       "File(s) to use as input",
		ConfigFlagHelp:   "Print the current default config",
		DebugFlagHelp:    "Write a development log to the config directory",
		KindFlagHelp:     "Kind every input must be: any, file or directory",
		FailFastFlagHelp: "Stop at the first input that cannot be used",
		NoPrecheckHelp:   "Skip the early check of all inputs before any is used",
		BacktraceHelp:    "Print a backtrace along with any error",

		PathColumn:   "PATH",
		KindColumn:   "KIND",
		SizeColumn:   "SIZE",
		DetailColumn: "DETAIL",

		EntriesDetail: "%d entries",
		LinesDetail:   "%d lines",
		NoDetail:      "-",

		EmptyInpathError: "inpath must not be empty",
		UnknownFlagError: "unknown flag %s",
		PrecheckFailed:   "input %s failed the early check",
		InputFailed:      "could not use input %s",
		InputsFailed:     "%d of %d inputs could not be processed",
		InspectionDone:   "inspected input",

		UsageTitle:     "Usage",
		ArgumentsTitle: "Arguments",
		FlagsTitle:     "Flags",
	}
}
