package orders

import (
	"math/big"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/math"
)

// Decode splits data into PackedSchema records and decodes each of them.
func Decode(data []byte) ([]AuctionOrder, error) {
	return packedSchema.Decode(data)
}

// Encode is the inverse of Decode.
func Encode(orders ...AuctionOrder) ([]byte, error) {
	return packedSchema.Encode(orders...)
}

// Decode splits data into fixed-width records and decodes them positionally.
// The result has one order per record, in input order. Nothing is returned on error.
func (s Schema) Decode(data []byte) ([]AuctionOrder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	size := s.RecordSize()
	if len(data)%size != 0 {
		return nil, errors.Malformed(len(data), size)
	}

	decoded := make([]AuctionOrder, 0, len(data)/size)
	for i := 0; i < len(data)/size; i++ {
		r := &recordReader{record: i, buf: data[i*size : (i+1)*size]}
		order, err := r.read(s)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, order)
	}
	return decoded, nil
}

// Encode writes orders as consecutive fixed-width records.
func (s Schema) Encode(orders ...AuctionOrder) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	size := s.RecordSize()
	out := make([]byte, size*len(orders))
	for i, o := range orders {
		w := &recordWriter{record: i, buf: out[i*size : (i+1)*size]}
		if err := w.write(s, o); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type recordReader struct {
	record int
	buf    []byte
	off    int
}

func (r *recordReader) next(f Field) (*big.Int, error) {
	raw := r.buf[r.off : r.off+f.Size]
	r.off += f.Size
	n := new(big.Int).SetBytes(raw)
	if n.BitLen() > f.Bits {
		return nil, errors.Overflow(r.record, f.Name, f.Bits)
	}
	return n, nil
}

func (r *recordReader) read(s Schema) (AuctionOrder, error) {
	var (
		o      AuctionOrder
		values [9]*big.Int
		err    error
	)
	for i, f := range s.Fields() {
		if values[i], err = r.next(*f); err != nil {
			return AuctionOrder{}, err
		}
	}
	values[0].FillBytes(o.User[:])
	o.SellTokenBalance = values[1]
	o.BuyToken = uint16(values[2].Uint64())
	o.SellToken = uint16(values[3].Uint64())
	o.ValidFrom = uint32(values[4].Uint64())
	o.ValidUntil = uint32(values[5].Uint64())
	o.PriceNumerator = values[6]
	o.PriceDenominator = values[7]
	o.RemainingAmount = values[8]
	return o, nil
}

type recordWriter struct {
	record int
	buf    []byte
	off    int
}

func (w *recordWriter) put(f Field, n *big.Int) error {
	if n == nil || math.IsNegative(n) {
		return errors.Newf(errors.InvalidInputError, "record %d: field %s must be a non-negative integer", w.record, f.Name)
	}
	if !math.FitsBits(n, f.Bits) {
		return errors.Overflow(w.record, f.Name, f.Bits)
	}
	n.FillBytes(w.buf[w.off : w.off+f.Size])
	w.off += f.Size
	return nil
}

func (w *recordWriter) write(s Schema, o AuctionOrder) error {
	values := []*big.Int{
		new(big.Int).SetBytes(o.User[:]),
		o.SellTokenBalance,
		big.NewInt(int64(o.BuyToken)),
		big.NewInt(int64(o.SellToken)),
		big.NewInt(int64(o.ValidFrom)),
		big.NewInt(int64(o.ValidUntil)),
		o.PriceNumerator,
		o.PriceDenominator,
		o.RemainingAmount,
	}
	for i, f := range s.Fields() {
		if err := w.put(*f, values[i]); err != nil {
			return err
		}
	}
	return nil
}
