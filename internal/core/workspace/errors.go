package workspace

import "errors"

// ErrNoWorkspace is returned by FindRoot when no ancestor of the starting
// path, up to and including the filesystem root, contains a marked workspace
// configuration file. It is a normal terminal state, not a failure.
var ErrNoWorkspace = errors.New("no workspace configuration found")
