// internal/codec/codec.go
//
// Reversible obfuscation for the secret word.
//
// The daily word travels from the server to the client, and sits in
// persisted game data, as an opaque token rather than plain text. The
// token is the word XORed with a fixed chacha20 keystream, followed by a
// 4-byte HMAC-SHA256 tag, encoded as unpadded base64url.
//
// Notes:
//   - Key and nonce are embedded constants; anyone with this source can
//     decode a token. This keeps the word out of plain sight, nothing more.
//   - Encode is deterministic: the same word always yields the same token.
//   - Decode rejects anything that does not round-trip to a 5-letter word.

package codec

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/chacha20"
)

// WordLen is the only word length the codec accepts.
const WordLen = 5

const tagLen = 4

var (
	// ErrCorruptToken is returned by Decode for any token it cannot
	// turn back into a valid word.
	ErrCorruptToken = errors.New("codec: corrupt token")

	// ErrInvalidWord is returned by Encode when the input is not
	// exactly five lowercase a–z letters.
	ErrInvalidWord = errors.New("codec: word must be 5 lowercase letters")
)

var (
	key   = []byte("wordle-engine:obfuscation-key-01") // 32 bytes
	nonce = []byte("daily-word-v")                     // 12 bytes
	enc   = base64.RawURLEncoding
)

// Encode turns a plain word into its token.
func Encode(word string) (string, error) {
	if !isWord([]byte(word)) {
		return "", ErrInvalidWord
	}
	buf := make([]byte, WordLen+tagLen)
	keystream(buf[:WordLen], []byte(word))
	copy(buf[WordLen:], tag([]byte(word)))
	return enc.EncodeToString(buf), nil
}

// Decode recovers the plain word from a token produced by Encode.
func Decode(token string) (string, error) {
	raw, err := enc.DecodeString(token)
	if err != nil || len(raw) != WordLen+tagLen {
		return "", ErrCorruptToken
	}
	plain := make([]byte, WordLen)
	keystream(plain, raw[:WordLen])
	if !hmac.Equal(tag(plain), raw[WordLen:]) || !isWord(plain) {
		return "", ErrCorruptToken
	}
	return string(plain), nil
}

// keystream XORs src into dst with a fresh cipher positioned at block 0.
func keystream(dst, src []byte) {
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// Only reachable with a malformed key or nonce constant.
		panic("codec: " + err.Error())
	}
	c.XORKeyStream(dst, src)
}

func tag(plain []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(plain)
	return m.Sum(nil)[:tagLen]
}

func isWord(b []byte) bool {
	if len(b) != WordLen {
		return false
	}
	for _, c := range b {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
