package cli

import "errors"

var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigFileRead     = errors.New("cannot read config file")
	errConfigInvalid      = errors.New("invalid config file")
	errUnknownPreset      = errors.New("unknown preset (want crucible, ultra or both)")
	errUnknownLogLevel    = errors.New("unknown log_level (want debug, info, warn or error)")
	errBadCell            = errors.New("cell must be written as x,y")
	errTooManyArgs        = errors.New("at most one grid file may be given")
)
