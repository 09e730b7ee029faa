// Package command defines the data model shared by every part of the command
// system: registered overloads (Command), resolution requests (ParsedCommand)
// and the typed errors produced while registering and resolving them.
//
// Package: command
// Title: Command Data Model and Error Taxonomy
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Every failure kind is its own struct carrying the values needed to render a
// diagnostic. Callers branch with errors.As and may convert any of them into a
// structured foundation error with AsError:
//
//	var ambiguous *command.AmbiguousCommandCallError
//	if errors.As(err, &ambiguous) {
//		for _, cmd := range ambiguous.Matches {
//			fmt.Println(cmd.Signature.Raw)
//		}
//	}
package command
