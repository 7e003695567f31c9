// Package timeout supplies Timeout implementations for
// github.com/katalvlaran/maxclique/clique: Never, which never aborts,
// and Deadline, a wall-clock deadline checked sparsely (every fixed
// number of calls) so the frequent ShouldAbort calls from deep in the
// search don't dominate with syscalls.
package timeout
