package model

// A Thought represents a database record and the rendered API response.
//
// There is no stored title: the presentation layer derives one from the
// first line of Content.
type Thought struct {
	Base `msgpack:",inline" storm:"inline"`

	OwnerID string `json:"owner_id" msgpack:"owner_id" storm:"index"`
	Content string `json:"content"  msgpack:"content"`
}

// ContentMaxLength is the upper bound of a thought's content.
const ContentMaxLength = 20000
