package entities

// seqRand 按顺序返回预设值的 RandSource，用尽后循环
type seqRand struct {
	values []float64
	index  int
}

func newSeqRand(values ...float64) *seqRand {
	return &seqRand{values: values}
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.index%len(r.values)]
	r.index++
	return v
}
