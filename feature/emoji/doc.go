// Package emoji ingests the Unicode emoji-test data file.
//
// The file is a line-oriented format with comment headers marking sections:
//
//	# group: Smileys & Emotion
//	# subgroup: face-smiling
//	1F600 ; fully-qualified # 😀 grinning face
//
// Parse walks the file once, tracking the current group and subgroup, and
// produces an ordered Catalog plus diagnostics for every skipped line. The
// store side flattens the catalog into the 'emojis' table, clearing it first
// so repeated ingests never duplicate rows.
package emoji
