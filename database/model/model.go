package model

// DefaultLeadStatus is applied when a lead is created without a status.
const DefaultLeadStatus = "New"

// User is a panel account. Passwords are stored bcrypt-hashed; the raw
// Password field only carries input from the CLI and is never persisted.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Password     string `json:"-" gorm:"-"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
}

// Lead is a sales prospect tracked by the panel. Leads live in a single
// shared pool, they carry no owner.
type Lead struct {
	Id      int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" form:"name" gorm:"not null"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company" form:"company"`
	Status  string `json:"status" form:"status" gorm:"default:New"`
}

// Setting is a key/value runtime setting row.
type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
