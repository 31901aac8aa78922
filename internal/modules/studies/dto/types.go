package dto

type SearchInput struct {
	Query string
}

type StudyOutput struct {
	Year    int
	Title   string
	Authors string
	Journal string
}

type SearchOutput struct {
	Query   string
	Studies []StudyOutput
}
