// Package inputx provides typed terminal prompts for libutils.
//
// Package: inputx
// Title: Prompt Loops for libutils
// Description: A Prompter prints a prompt, reads a line and asks again until
//              the answer parses: integers in a range, any numeric type,
//              single characters and yes/no answers. Loops stop after
//              MaxAttempts answers (0 = unlimited), on EOF and when the
//              context is done.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-13
// Modified: 2025-02-13
//
// Change History:
// - 2025-02-13 v0.1.0: Initial implementation
//
// Usage:
//
//	p := inputx.Stdio(inputx.WithMaxAttempts(3))
//	choice, err := p.IntInRange(ctx, "Choose 1-3: ", 1, 3)
//	if err != nil {
//		return err
//	}
//	age, err := inputx.Number[uint8](ctx, p, "Age: ")
//
// Cancellation:
//
// A read blocked on input is abandoned when the context is done. The
// goroutine performing it exits as soon as the reader returns, and its line
// is handed to the next prompt on the same Prompter.
package inputx
