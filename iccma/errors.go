package iccma

import "errors"

var (
	// ErrUnknownTask names the error for a task string outside
	// SupportedTasks(). ParseTask does not return it; it reports that case
	// with ok == false.
	ErrUnknownTask = errors.New("iccma: unsupported problem task")

	// ErrArgumentRequired is returned when a DC/DS task is requested
	// without -a/--argument.
	ErrArgumentRequired = errors.New("iccma: decision task requires -a/--argument")

	// ErrArgumentForbidden is returned when -a/--argument is given for an
	// SE/EE task.
	ErrArgumentForbidden = errors.New("iccma: enumeration task forbids -a/--argument")
)
