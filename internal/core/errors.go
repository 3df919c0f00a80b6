package core

import "errors"

// ErrNoHighScore is returned by score stores that have nothing saved yet.
var ErrNoHighScore = errors.New("no high score saved")
