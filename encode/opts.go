package encode

import "github.com/DeadZoneLuna/WwisePCKUnpacker/settings"

type EncodeOption func(*EncState)

// EncodeSettings applies the write side of s, which is escape
// processing.
func EncodeSettings(s settings.Settings) EncodeOption {
	return func(es *EncState) { es.escapes = s.UseEscapeSequences }
}

func EncodeEscapes(v bool) EncodeOption {
	return func(es *EncState) { es.escapes = v }
}

// EncodeComments controls whether comment nodes are written. It is on
// by default.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeCloser makes Writer.Close close the destination when it is an
// io.Closer.
func EncodeCloser(v bool) EncodeOption {
	return func(es *EncState) { es.closer = v }
}
