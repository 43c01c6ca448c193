package engine

// VerboseMode enables build traces on stderr.
var VerboseMode bool
