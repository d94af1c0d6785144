package repositories

// ArchiveBuilder is the external archive-writing capability: it accepts
// named binary entries and produces a single container on Finalize. The
// core never encodes the container format itself.
type ArchiveBuilder interface {
	Add(name string, data []byte) error
	Finalize() ([]byte, error)
}

// ArchiveBuilderFactory returns a fresh builder per export run.
type ArchiveBuilderFactory func() ArchiveBuilder
