package main

import "strings"

// A reducer is a pure token-stream transform. The pipeline below runs in a
// fixed order: signed and float fusion must happen before the :: pass so
// numeric literals are not mistaken for resolution operands.
type reducer func(toks []Token) []Token

var reducers = []reducer{
	removeComments,
	fuseSignedIntegers,
	fuseFloats,
	fuseResolutionOperator,
	fuseNamespacedNames,
}

func reduce(toks []Token) []Token {
	for _, red := range reducers {
		toks = red(toks)
	}
	return toks
}

// removeComments strips // line comments up to (excluding) the next newline,
// and /* */ block comments including the closing pair. The opening slash has
// already been pushed when the second comment character shows up, so it is
// popped back off.
func removeComments(toks []Token) []Token {
	var out []Token
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if len(out) > 0 && out[len(out)-1].Text == "/" {
			switch tok.Text {
			case "/":
				out = out[:len(out)-1]
				for i++; i < len(toks) && toks[i].Text != "\n"; i++ {
				}
				if i < len(toks) {
					out = append(out, toks[i])
				}
				continue
			case "*":
				out = out[:len(out)-1]
				for i++; i < len(toks); i++ {
					if toks[i].Text == "*" && i+1 < len(toks) && toks[i+1].Text == "/" {
						i++
						break
					}
				}
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

// fuseSignedIntegers turns the three tokens of `= - N` into `= -N`.
func fuseSignedIntegers(toks []Token) []Token {
	var out []Token
	for _, tok := range toks {
		if n := len(out); n >= 2 &&
			out[n-1].Text == "-" && out[n-2].Text == "=" &&
			isNum(tok.Text, false) {
			tok.Text = "-" + tok.Text
			out = out[:n-1]
		}
		out = append(out, tok)
	}
	return out
}

// fuseFloats joins `N . M` into a single `N.M` token. The integral part may
// already carry a sign from the previous pass.
func fuseFloats(toks []Token) []Token {
	var out []Token
	for _, tok := range toks {
		if n := len(out); n >= 2 &&
			out[n-1].Text == "." && isNum(out[n-2].Text, true) &&
			isNum(tok.Text, false) {
			tok.Text = out[n-2].Text + "." + tok.Text
			out = out[:n-2]
		}
		out = append(out, tok)
	}
	return out
}

// fuseResolutionOperator joins two consecutive colons into one :: token.
func fuseResolutionOperator(toks []Token) []Token {
	var out []Token
	for _, tok := range toks {
		if n := len(out); n >= 1 && out[n-1].Text == ":" && tok.Text == ":" {
			out[n-1].Text = "::"
			continue
		}
		out = append(out, tok)
	}
	return out
}

// fuseNamespacedNames absorbs `a :: b` into a single a::b token, repeatedly,
// so a::b::c collapses in one pass.
func fuseNamespacedNames(toks []Token) []Token {
	var out []Token
	for _, tok := range toks {
		if n := len(out); n >= 2 &&
			out[n-1].Text == "::" && isNamespacePart(out[n-2].Text) &&
			isValidName(tok.Text) {
			out[n-2].Text += "::" + tok.Text
			out = out[:n-1]
			continue
		}
		out = append(out, tok)
	}
	return out
}

func isNamespacePart(s string) bool {
	for _, part := range strings.Split(s, "::") {
		if !isValidName(part) {
			return false
		}
	}
	return true
}
