// Package model defines the database models for the full-service panel.
package model

import (
	"database/sql/driver"
	"time"

	"ofs-panel/util/common"

	"github.com/goccy/go-json"
)

// Roles assignable to a user. VIP is the highest tier: it may author news and
// manage other users' roles and ban state.
const (
	RoleUser  = "users"
	RoleAdmin = "admin"
	RoleVIP   = "VIP"
)

// Order lifecycle. Pending is the only state that may transition; approved and
// rejected are terminal.
const (
	OrderPending  = "pending"
	OrderApproved = "approved"
	OrderRejected = "rejected"
)

// StringList is stored as a JSON text column, preserving element order.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	}
	return common.NewError("unsupported StringList column type:", value)
}

// SocialLink is an external link attached to a news post.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// SocialLinkList is stored as a JSON text column.
type SocialLinkList []SocialLink

func (l SocialLinkList) Value() (driver.Value, error) {
	if l == nil {
		l = SocialLinkList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *SocialLinkList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	}
	return common.NewError("unsupported SocialLinkList column type:", value)
}

// User is an account. Password holds a bcrypt hash and never leaves the server.
type User struct {
	Id              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string    `json:"name" gorm:"not null"`
	Username        string    `json:"username" gorm:"uniqueIndex;not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	Password        string    `json:"-" gorm:"not null"`
	Role            string    `json:"role" gorm:"not null;default:users"`
	ProfileImageURL string    `json:"profileImageUrl"`
	IsBanned        bool      `json:"isBanned" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Product is a marketplace listing. Listings are soft-deactivated, never
// deleted, so order history keeps resolving.
type Product struct {
	Id              int        `json:"id" gorm:"primaryKey;autoIncrement"`
	TargetNumber    string     `json:"targetNumber" gorm:"uniqueIndex;not null"`
	OwnerId         int        `json:"ownerId" gorm:"index;not null"`
	Owner           *User      `json:"owner,omitempty" gorm:"foreignKey:OwnerId"`
	Name            string     `json:"name" gorm:"not null"`
	Description     string     `json:"description" gorm:"not null"`
	Price           float64    `json:"price" gorm:"not null"`
	IconURL         string     `json:"iconUrl"`
	Images          StringList `json:"images" gorm:"type:text"`
	VideoURL        string     `json:"videoUrl"`
	ContactPlatform string     `json:"contactPlatform"`
	ContactInfo     string     `json:"contactInfo"`
	IsActive        bool       `json:"isActive" gorm:"not null;default:true"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// News is a post authored by a VIP user, optionally referencing products and
// external social links.
type News struct {
	Id           int            `json:"id" gorm:"primaryKey;autoIncrement"`
	AuthorId     int            `json:"authorId" gorm:"index;not null"`
	Author       *User          `json:"author,omitempty" gorm:"foreignKey:AuthorId"`
	Title        string         `json:"title" gorm:"not null"`
	Content      string         `json:"content" gorm:"not null"`
	Images       StringList     `json:"images" gorm:"type:text"`
	VideoURL     string         `json:"videoUrl"`
	ProductLinks StringList     `json:"productLinks" gorm:"type:text"`
	SocialLinks  SocialLinkList `json:"socialLinks" gorm:"type:text"`
	IsActive     bool           `json:"isActive" gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// PaymentMethod is a per-seller receive-payment instruction. There is no edit
// path: methods are created, offered while active, and deactivated.
type PaymentMethod struct {
	Id             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId         int       `json:"userId" gorm:"index;not null"`
	PaymentName    string    `json:"paymentName" gorm:"not null"`
	Address        string    `json:"address" gorm:"not null"`
	PaymentIconURL string    `json:"paymentIconUrl"`
	Description    string    `json:"description"`
	QRCodeURL      string    `json:"qrCodeUrl"`
	IsActive       bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Order records a purchase. TotalAmount snapshots the product price at
// checkout time and never changes afterwards.
type Order struct {
	Id              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber     string    `json:"orderNumber" gorm:"uniqueIndex;not null"`
	ProductId       int       `json:"productId" gorm:"index;not null"`
	Product         *Product  `json:"product,omitempty" gorm:"foreignKey:ProductId"`
	BuyerId         int       `json:"buyerId" gorm:"index;not null"`
	Buyer           *User     `json:"buyer,omitempty" gorm:"foreignKey:BuyerId"`
	SellerId        int       `json:"sellerId" gorm:"index;not null"`
	Seller          *User     `json:"seller,omitempty" gorm:"foreignKey:SellerId"`
	PaymentMethodId int       `json:"paymentMethodId"`
	PaymentProofURL string    `json:"paymentProofUrl"`
	Status          string    `json:"status" gorm:"not null;default:pending"`
	TotalAmount     float64   `json:"totalAmount" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserSession is a best-effort sign-in audit record. Writes never block or
// fail the sign-in itself.
type UserSession struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId       int       `json:"userId" gorm:"index;not null"`
	IPAddress    string    `json:"ipAddress"`
	DeviceInfo   string    `json:"deviceInfo"`
	PlatformName string    `json:"platformName"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Setting is a persisted key-value panel setting.
type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value"`
}
