package entity

import "time"

// Client representa el agregado raíz: empresa cliente con logotipo opcional
// y cero o más direcciones. Las direcciones no existen fuera de su cliente.
// Los tags de gorm definen el esquema relacional: índice único sobre email
// (invariante de unicidad, el árbitro final ante escrituras concurrentes) y
// borrado en cascada de las direcciones hijas.
type Client struct {
	ID        int       `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:150;not null;uniqueIndex:idx_clients_email"`
	Phone     string    `gorm:"size:30"`
	Logo      []byte    // nil = sin logotipo; nunca se carga en el listado
	Addresses []Address `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address dirección postal de un cliente. ClientID lo fija siempre la capa
// de persistencia, nunca se confía en el valor que venga del caller.
type Address struct {
	ID           int    `gorm:"primaryKey"`
	ClientID     int    `gorm:"not null;index"`
	Street       string `gorm:"size:150;not null"`
	Complement   string `gorm:"size:100"`
	Neighborhood string `gorm:"size:100;not null"`
	City         string `gorm:"size:100;not null"`
	State        string `gorm:"size:2;not null"`
	PostalCode   string `gorm:"size:10;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
