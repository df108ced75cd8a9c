package domain

import "unicode/utf8"

// MaxMessageLength is the longest ad message, in characters.
const MaxMessageLength = 60

// Creative is the content shown to the audience: a short message and an
// optional image reference produced by the upload collaborator.
type Creative struct {
	Message  string `json:"message" validate:"max=60"`
	ImageURL string `json:"image_url"`
}

// MessageLength returns the message length in characters.
func (c Creative) MessageLength() int {
	return utf8.RuneCountInString(c.Message)
}

// HasValidMessage reports whether the message is non-empty and fits
// MaxMessageLength.
func (c Creative) HasValidMessage() bool {
	n := c.MessageLength()
	return n > 0 && n <= MaxMessageLength
}

// EffectiveImageURL returns the image reference, or fallback when none was
// uploaded.
func (c Creative) EffectiveImageURL(fallback string) string {
	if c.ImageURL == "" {
		return fallback
	}
	return c.ImageURL
}
