package astirecorder

// Block represents a fixed-size chunk of signed 16-bit mono samples as delivered by a BlockSource
type Block []int16

// BlockSource represents an object capable of delivering blocks, blocking until one is available
type BlockSource interface {
	ReadBlock() (Block, error)
}

// Peak returns the block's peak absolute sample magnitude
func Peak(b Block) (p int) {
	for _, s := range b {
		// Samples are widened first so that -32768 doesn't overflow
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > p {
			p = v
		}
	}
	return
}

// Utterance represents the ordered blocks accumulated while recording
type Utterance []Block

// NumSamples returns the total number of samples
func (u Utterance) NumSamples() (n int) {
	for _, b := range u {
		n += len(b)
	}
	return
}

// Samples returns the concatenated samples as ints, which is what go-audio expects
func (u Utterance) Samples() (ss []int) {
	ss = make([]int, 0, u.NumSamples())
	for _, b := range u {
		for _, s := range b {
			ss = append(ss, int(s))
		}
	}
	return
}
