package orders

import (
	"github.com/dora-network/batch-exchange-utils/errors"
)

// Field describes one positional field of an encoded order record.
// Size is the number of bytes the field occupies in the record, Bits the declared width of its value.
type Field struct {
	Name string
	Size int
	Bits int
}

// Schema is the fixed-width record layout of an encoded order blob. Fields are
// always laid out in the order returned by Fields.
type Schema struct {
	User             Field
	SellTokenBalance Field
	BuyToken         Field
	SellToken        Field
	ValidFrom        Field
	ValidUntil       Field
	PriceNumerator   Field
	PriceDenominator Field
	RemainingAmount  Field
}

var (
	packedSchema = Schema{
		User:             Field{Name: "user", Size: 20, Bits: 160},
		SellTokenBalance: Field{Name: "sellTokenBalance", Size: 32, Bits: 256},
		BuyToken:         Field{Name: "buyToken", Size: 2, Bits: 16},
		SellToken:        Field{Name: "sellToken", Size: 2, Bits: 16},
		ValidFrom:        Field{Name: "validFrom", Size: 4, Bits: 32},
		ValidUntil:       Field{Name: "validUntil", Size: 4, Bits: 32},
		PriceNumerator:   Field{Name: "priceNumerator", Size: 16, Bits: 128},
		PriceDenominator: Field{Name: "priceDenominator", Size: 16, Bits: 128},
		RemainingAmount:  Field{Name: "remainingAmount", Size: 16, Bits: 128},
	}

	paddedSchema = padded(packedSchema)
)

// PackedSchema returns the tightly packed layout of the exchange's encoded order getters.
// Every call returns a fresh copy.
func PackedSchema() Schema {
	return packedSchema
}

// PaddedSchema returns the layout storing every field in its own 32 byte word, as ABI encoding does.
func PaddedSchema() Schema {
	return paddedSchema
}

func padded(s Schema) Schema {
	fields := s.Fields()
	for _, f := range fields {
		f.Size = 32
	}
	return Schema{
		User:             *fields[0],
		SellTokenBalance: *fields[1],
		BuyToken:         *fields[2],
		SellToken:        *fields[3],
		ValidFrom:        *fields[4],
		ValidUntil:       *fields[5],
		PriceNumerator:   *fields[6],
		PriceDenominator: *fields[7],
		RemainingAmount:  *fields[8],
	}
}

// Fields returns pointers to the schema fields in record order.
func (s *Schema) Fields() []*Field {
	return []*Field{
		&s.User,
		&s.SellTokenBalance,
		&s.BuyToken,
		&s.SellToken,
		&s.ValidFrom,
		&s.ValidUntil,
		&s.PriceNumerator,
		&s.PriceDenominator,
		&s.RemainingAmount,
	}
}

// RecordSize is the width in bytes of a single encoded order.
func (s Schema) RecordSize() int {
	size := 0
	for _, f := range s.Fields() {
		size += f.Size
	}
	return size
}

// Validate checks that every field fits in its record slot and that bounded fields fit their Go types.
func (s Schema) Validate() error {
	limits := map[*Field]int{
		&s.User:       AddressLength * 8,
		&s.BuyToken:   16,
		&s.SellToken:  16,
		&s.ValidFrom:  32,
		&s.ValidUntil: 32,
	}
	for _, f := range s.Fields() {
		if f.Size <= 0 || f.Bits <= 0 {
			return errors.Newf(errors.InvalidInputError, "schema field %s must have a positive size and width", f.Name)
		}
		if f.Bits > f.Size*8 {
			return errors.Newf(errors.InvalidInputError, "schema field %s declares %d bits in %d bytes", f.Name, f.Bits, f.Size)
		}
		if limit, ok := limits[f]; ok && f.Bits > limit {
			return errors.Newf(errors.InvalidInputError, "schema field %s declares %d bits, at most %d supported", f.Name, f.Bits, limit)
		}
	}
	if s.User.Bits != AddressLength*8 {
		return errors.Newf(errors.InvalidInputError, "schema field %s must be %d bits", s.User.Name, AddressLength*8)
	}
	return nil
}
