package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"
)

// IDLen — длина ключа хранилища в hex-символах.
const IDLen = 24

var (
	processUnique = readProcessUnique()
	idCounter     = readCounterSeed()
)

// NewID генерирует ключ хранилища: 24 hex-символа.
//
// Раскладка 12 байт: 4 байта unix-секунд, 5 байт случайных на процесс,
// 3 байта счётчика. Ключи, созданные позже, сортируются позже.
func NewID() string {
	var b [12]byte

	binary.BigEndian.PutUint32(b[0:4], uint32(time.Now().Unix()))
	copy(b[4:9], processUnique[:])

	c := atomic.AddUint32(&idCounter, 1)
	b[9] = byte(c >> 16)
	b[10] = byte(c >> 8)
	b[11] = byte(c)

	return hex.EncodeToString(b[:])
}

// IsID проверяет, что s — корректный ключ хранилища.
func IsID(s string) bool {
	if len(s) != IDLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func readProcessUnique() [5]byte {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return b
}

func readCounterSeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint32(b[:])
}
