// Package token provides the lexical layer of the KeyValues grammar.
//
// The grammar has six kinds of token:
//
//	"quoted string"   TString
//	bare_word         TLiteral
//	{                 TLCurl
//	}                 TRCurl
//	// comment        TComment
//	[$CONDITION]      TCond
//
// [Tokenizer] reads them one at a time from an [io.Reader]; [Tokenize]
// collects all tokens of a byte slice.  Escape translation, lowercase
// folding and the token size limit are selected with [TokenOpt]s.
//
// [Quote] and [Unquote] convert between payloads and their quoted form
// and are shared with the writer.
package token
