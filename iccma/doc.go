// Package iccma formats solver results per the ICCMA competition output
// conventions: YES/NO for decision tasks, bracketed argument-name lists for
// single/enumerate-extension tasks, and the closed --problems listing.
package iccma
