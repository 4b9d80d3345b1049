package world

import "errors"

// ErrOverlayFull is returned by PutBlock when the block-change overlay has
// reached MaxBlockChanges and cannot accept another override.
var ErrOverlayFull = errors.New("worldgen: block-change overlay is full")
