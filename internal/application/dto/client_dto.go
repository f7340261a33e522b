package dto

// AddressInput una dirección tal como llega del binding (multipart o JSON).
// El id que pueda venir se ignora: la identidad de las direcciones la asigna
// siempre la capa de persistencia.
type AddressInput struct {
	ID           int    `json:"id"`
	Street       string `json:"street" validate:"required,max=150"`
	Complement   string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood string `json:"neighborhood" validate:"required,max=100"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,len=2"`
	PostalCode   string `json:"postal_code" validate:"required,max=10"`
}

// CreateClientRequest entrada para crear un cliente. Logo en base64 cuando
// el cuerpo es JSON; en multipart el handler lo lee del archivo.
type CreateClientRequest struct {
	Name      string         `json:"name" validate:"required,min=2,max=100"`
	Email     string         `json:"email" validate:"required"`
	Phone     string         `json:"phone"`
	Logo      []byte         `json:"logo,omitempty"`
	Addresses []AddressInput `json:"addresses"`
}

// UpdateClientRequest entrada para actualizar un cliente existente.
// El conjunto de direcciones suministrado reemplaza por completo al anterior.
type UpdateClientRequest struct {
	ID        int            `json:"id" validate:"required,gt=0"`
	Name      string         `json:"name" validate:"required,min=2,max=100"`
	Email     string         `json:"email" validate:"required"`
	Phone     string         `json:"phone"`
	Logo      []byte         `json:"logo,omitempty"`
	Addresses []AddressInput `json:"addresses"`
}

// ClientSummaryResponse proyección ligera para listados: nunca incluye logo.
type ClientSummaryResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AddressResponse dirección en respuestas de detalle.
type AddressResponse struct {
	ID           int    `json:"id"`
	ClientID     int    `json:"client_id"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

// ClientDetailResponse proyección completa: logo (base64 en JSON) y
// direcciones.
type ClientDetailResponse struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Logo      []byte            `json:"logo,omitempty"`
	Addresses []AddressResponse `json:"addresses"`
}

// ClientResultResponse confirmación de creación.
type ClientResultResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
