package entities

import (
	"time"
)

// User is a registered account. The primary key is a generated 10-character
// code rather than a surrogate integer (see auth.GenerateUserID).
type User struct {
	UserID       string    `gorm:"primaryKey;size:10" json:"user_id"`
	Username     string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:50;not null" json:"email"`
	PasswordHash string    `gorm:"uniqueIndex;size:255;not null" json:"-"`
	CreationTime time.Time `gorm:"autoCreateTime" json:"creation_time"`
	Admin        bool      `gorm:"not null;default:false" json:"admin"`
}

type Author struct {
	AuthorID   uint    `gorm:"primaryKey" json:"author_id"`
	AuthorName string  `gorm:"index;size:50;not null" json:"author_name"`
	AuthorBio  *string `gorm:"size:500" json:"author_bio,omitempty"`
}

type Publisher struct {
	PublisherID   uint   `gorm:"primaryKey" json:"publisher_id"`
	PublisherName string `gorm:"uniqueIndex;size:50;not null" json:"publisher_name"`
}

type Book struct {
	BookID          uint      `gorm:"primaryKey" json:"book_id"`
	Name            string    `gorm:"size:50;not null" json:"name"`
	AuthorID        uint      `gorm:"not null;index" json:"author_id"`
	Author          Author    `gorm:"foreignKey:AuthorID;references:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Category        string    `gorm:"size:50;not null" json:"category"`
	Genre           string    `gorm:"size:50;not null" json:"genre"`
	PublisherID     *uint     `gorm:"index" json:"publisher_id,omitempty"`
	Publisher       Publisher `gorm:"foreignKey:PublisherID;references:PublisherID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PublishDate     time.Time `gorm:"type:date;not null" json:"publish_date"`
	Language        string    `gorm:"size:30;not null" json:"language"`
	PageCount       int       `gorm:"not null" json:"page_count"`
	CopiesAvailable int       `gorm:"not null" json:"copies_available"`
	ImageLink       *string   `gorm:"size:255" json:"image_link,omitempty"`
	RatedType       string    `gorm:"size:20;not null" json:"rated_type"`
	Description     *string   `gorm:"type:text" json:"description,omitempty"`
}

type Booking struct {
	BookingID       uint      `gorm:"primaryKey" json:"booking_id"`
	UserID          string    `gorm:"size:10;not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BookID          uint      `gorm:"not null;index" json:"book_id"`
	Book            Book      `gorm:"foreignKey:BookID;references:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BookingDate     time.Time `gorm:"not null" json:"booking_date"`
	DueDate         time.Time `gorm:"not null" json:"due_date"`
	CurrentlyBooked bool      `gorm:"not null;default:true" json:"currently_booked"`
	PendingReturn   bool      `gorm:"not null;default:false" json:"pending_return"`
}

type Reservation struct {
	ReservationID   uint      `gorm:"primaryKey" json:"reservation_id"`
	UserID          string    `gorm:"size:10;not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BookID          uint      `gorm:"not null;index" json:"book_id"`
	Book            Book      `gorm:"foreignKey:BookID;references:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ReservationDate time.Time `gorm:"not null" json:"reservation_date"`
}

// Review is keyed by (BookID, UserID): one review per user per book.
// Creating a second review for the same pair overwrites the first.
type Review struct {
	BookID      uint      `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
	Book        Book      `gorm:"foreignKey:BookID;references:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	UserID      string    `gorm:"primaryKey;size:10" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewDate  time.Time `gorm:"not null" json:"review_date"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
}

type Transaction struct {
	TransactionID   uint      `gorm:"primaryKey" json:"transaction_id"`
	UserID          string    `gorm:"size:10;not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BookID          uint      `gorm:"not null;index" json:"book_id"`
	Book            Book      `gorm:"foreignKey:BookID;references:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`
	Reserved        bool      `gorm:"not null" json:"reserved"`
}

// TableName keeps the historical table name from the original schema.
func (Transaction) TableName() string {
	return "transaction_history"
}
