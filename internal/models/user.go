package models

import "time"

const (
	RoleVisitor = "visitante"
	RoleAdmin   = "admin"
)

type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FullName   string `gorm:"not null" json:"nomeCompleto"`
	Gender     string `json:"genero"`
	Email      string `gorm:"unique;not null" json:"email"`
	Document   string `gorm:"unique;not null" json:"cpfCnpj"`
	Address    string `json:"endereco"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	Phone      string `json:"celular"`
	PostalCode string `json:"cep"`
	Password   string `gorm:"not null" json:"-"`
	Role       string `gorm:"not null;default:'visitante'" json:"tipo"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
