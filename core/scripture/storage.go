package scripture

// BookStorage tags where the book collection lives: materialized in memory
// (Local) or only referenced externally (Remote). The set is closed; callers
// branch once with a type switch at the boundary. A remote reference is
// never inspected or resolved here; materializing it is the caller's job.
type BookStorage interface {
	isBookStorage()
}

// Local holds the book collection in memory.
type Local struct {
	Books *Books
}

func (Local) isBookStorage() {}

// Remote references a book collection held elsewhere. The reference is
// opaque to this module.
type Remote struct {
	Ref string
}

func (Remote) isBookStorage() {}
