package scryfall

// ImageURIs carries the three render sizes the importer keeps.
type ImageURIs struct {
	Small  string `json:"small" validate:"required"`
	Normal string `json:"normal" validate:"required"`
	Large  string `json:"large" validate:"required"`
}

// CardFace is one face of a multi-faced card. Faces without their own images
// are possible on some layouts; the merge step decides whether that is fatal.
type CardFace struct {
	Name      string     `json:"name"`
	ImageURIs *ImageURIs `json:"image_uris"`
}

// CardData is one metadata object from the collection lookup response. Single
// faced cards expose a unified image_uris object; multi-faced cards expose
// card_faces, each with its own image set.
type CardData struct {
	ID        string     `json:"id" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	Set       string     `json:"set" validate:"required"`
	SetName   string     `json:"set_name" validate:"required"`
	Rarity    string     `json:"rarity" validate:"required"`
	Layout    string     `json:"layout" validate:"required"`
	ImageURIs *ImageURIs `json:"image_uris"`
	CardFaces []CardFace `json:"card_faces"`
}

type identifier struct {
	ID string `json:"id"`
}

type collectionRequest struct {
	Identifiers []identifier `json:"identifiers"`
}

type collectionResponse struct {
	Data []CardData `json:"data"`
}
