// Package filesend sends a batch of raw files through a linear railway:
// recognize, check the format version, check freshness, sign, then send.
//
// Every stage consumes the success value of the previous one. The first
// failure skips the remaining stages and is reported, annotated with the
// stage group it came from, in the FileSendResult of that file. One file's
// failure never stops the rest of the batch.
//
// Recognition, signing and transport are supplied by the host through the
// Recognizer, Cryptographer and Sender interfaces.
package filesend
