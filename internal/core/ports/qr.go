package ports

// QRGenerator maps an identifier string to a PNG image. The encoding itself
// is an opaque capability to the core.
type QRGenerator interface {
	Generate(data string) ([]byte, error)
}
