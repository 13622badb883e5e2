package tags

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
