// Package ass models Advanced SubStation Alpha (v4.00+) documents and the
// low-level encodings they require.
//
// It owns the color codec (packed &HAABBGGRR strings), the centisecond
// timestamp codec, inline override-tag builders (color switch, reset, fade,
// scale bounce), and the Document type that serializes script info, styles,
// and dialogue events into the exact text layout libass expects.
//
// Everything here is a pure function of its inputs. Higher-level caption
// layout lives in the captions package; this package never decides what to
// show, only how to spell it.
package ass
