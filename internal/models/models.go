package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Book struct {
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	NumOfPages int    `json:"num_of_pages"`
}

type ReadingInterval struct {
	Id        int64 `json:"id"`
	UserId    int64 `json:"userId"`
	BookId    int64 `json:"bookId"`
	StartPage int   `json:"startPage"`
	EndPage   int   `json:"endPage"`
}

// Overlaps reports whether the closed range [start, end] intersects the interval.
// Touching endpoints count as an overlap.
func (ri *ReadingInterval) Overlaps(start, end int) bool {
	return ri.StartPage <= end && start <= ri.EndPage
}

// ConflictsWithPageCount reports whether changing a book from oldPages to pages
// cuts through the interval. Either boundary pages or pages+oldPages falling
// strictly inside the interval, or the interval lying strictly between them,
// is a conflict.
func (ri *ReadingInterval) ConflictsWithPageCount(pages, oldPages int) bool {
	upper := pages + oldPages

	return (ri.StartPage < pages && ri.EndPage > pages) ||
		(ri.StartPage < upper && ri.EndPage > upper) ||
		(ri.StartPage > pages && ri.EndPage < upper)
}

// IntervalWithBook is an interval joined with the page count of its book.
type IntervalWithBook struct {
	ReadingInterval
	NumOfPages int
}

type User struct {
	Id         int64
	Username   string
	Name       string
	Password   string
	Role       string
	Created_at time.Time
}

// BookPageSums is the per-book aggregate of interval endpoints.
type BookPageSums struct {
	BookId   int64
	SumStart int
	SumEnd   int
}

func (s BookPageSums) ReadPages() int {
	return s.SumEnd - s.SumStart
}

type TopBook struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Pages     int    `json:"pages"`
	ReadPages int    `json:"readPages"`
}

type BookUpdate struct {
	Name  *string
	Pages *int
}

type BooksPage struct {
	Books       []Book `json:"books"`
	CurrentPage int    `json:"currentPage"`
	TotalCount  int    `json:"totalCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HandleCreateBookRequest struct {
	Name  string `json:"name" validate:"required"`
	Pages int    `json:"pages" validate:"required,min=1,max=2147483647"`
}

type HandleUpdateBookRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Pages *int    `json:"pages" validate:"omitempty,min=1,max=2147483647"`
}

type HandleCreateIntervalRequest struct {
	BookId int64 `json:"bookId" validate:"required,min=1"`
	Start  int   `json:"start" validate:"required,min=1,max=2147483647"`
	End    int   `json:"end" validate:"required,min=1,max=2147483647"`
}

type HandleUpdateIntervalRequest struct {
	Start int `json:"start" validate:"required,min=1,max=2147483647"`
	End   int `json:"end" validate:"required,min=1,max=2147483647"`
}

type HandleRegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type HandleLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type HandleAuthResponse struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
