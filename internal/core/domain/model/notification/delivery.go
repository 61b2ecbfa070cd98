package notification

import (
	"errors"
	"time"
	"unicode/utf8"

	"tours/internal/pkg/errs"
)

const lastErrorMaxLength = 1000

var (
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	ErrDeliveryAlreadySent      = errors.New("delivery has already been sent")
)

// Delivery records the send state of one notification email.
type Delivery struct {
	id        uint
	bookingID uint
	kind      Kind
	status    Status
	attempts  int
	lastError string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDelivery creates a Pending delivery of kind for a persisted booking.
func NewDelivery(bookingID uint, kind Kind) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		isConstructed: true,
	}

	var bookingErr error
	if bookingID == 0 {
		bookingErr = errs.NewValueIsRequiredError("booking_id")
	}
	if err := errors.Join(bookingErr, kind.Validate()); err != nil {
		return nil, err
	}

	d.bookingID = bookingID
	d.kind = kind
	return d, nil
}

// RestoreDelivery rebuilds a persisted delivery.
func RestoreDelivery(
	id, bookingID uint,
	kind Kind,
	status Status,
	attempts int,
	lastError string,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(bookingID, kind)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if attempts < 0 {
		return nil, errs.NewValueIsOutOfRangeError("attempts", attempts, 0, "unbounded")
	}

	d.id = id
	d.status = status
	d.attempts = attempts
	d.lastError = lastError
	d.createdAt = createdAt
	d.updatedAt = updatedAt
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// MarkPersisted records the storage-assigned id and creation time.
func (d *Delivery) MarkPersisted(id uint, createdAt time.Time) {
	d.id = id
	d.createdAt = createdAt
	d.updatedAt = createdAt
}

// CanAttempt reports whether another send is allowed under maxAttempts.
func (d *Delivery) CanAttempt(maxAttempts int) bool {
	return d.status != Sent && d.attempts < maxAttempts
}

// IsStale reports whether a Pending delivery has waited longer than after,
// meaning its queued send was most likely lost.
func (d *Delivery) IsStale(now time.Time, after time.Duration) bool {
	return d.status == Pending && now.Sub(d.createdAt) >= after
}

// MarkSent completes the delivery.
func (d *Delivery) MarkSent(now time.Time) error {
	if d.status == Sent {
		return ErrDeliveryAlreadySent
	}
	d.attempts++
	d.status = Sent
	d.lastError = ""
	d.updatedAt = now
	return nil
}

// MarkFailed records a failed attempt with its reason.
func (d *Delivery) MarkFailed(reason error, now time.Time) error {
	if d.status == Sent {
		return ErrDeliveryAlreadySent
	}
	d.attempts++
	d.status = Failed
	d.lastError = truncate(reason.Error(), lastErrorMaxLength)
	d.updatedAt = now
	return nil
}

func (d *Delivery) ID() uint {
	return d.id
}

func (d *Delivery) BookingID() uint {
	return d.bookingID
}

func (d *Delivery) Kind() Kind {
	return d.kind
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Attempts() int {
	return d.attempts
}

func (d *Delivery) LastError() string {
	return d.lastError
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

func truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}
