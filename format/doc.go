// Package format reads argumentation frameworks from the two ICCMA input
// encodings, TGF and APX.
//
// Parsing is mechanical by default: it tokenizes lines into argument and
// attack declarations without checking any of the malformed-input rules a
// hostile or hand-edited file might violate. Passing strict=true enables
// checks in the same pass — duplicate or malformed argument names, duplicate
// or dangling attacks, missing or repeated TGF separators — and every
// violation found is aggregated into a single returned error via
// github.com/hashicorp/go-multierror, rather than stopping at the first.
package format
