package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging é o bloco de paginação das respostas da Graph API. Next vazio encerra a paginação.
type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// Page é uma página de resultados de um edge da Graph API
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

func (p *Page[T]) HasNext() bool {
	return p.Paging.Next != ""
}
