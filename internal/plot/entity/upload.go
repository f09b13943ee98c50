package entity

// Upload is a file received in one request. It lives only in memory for the
// duration of that request.
type Upload struct {
	Filename string
	Content  []byte
}
