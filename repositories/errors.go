package repositories

import "errors"

// ErrNotFound aranan kayıt store'da bulunamadığında döner.
var ErrNotFound = errors.New("kayıt bulunamadı")
