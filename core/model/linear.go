package model

// Number is satisfied by every built-in integer and floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

const (
	// Coef is the multiplicative term of the linear model.
	Coef = 0.7
	// Intercept is the additive term of the linear model.
	Intercept = 5
)

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}

// Mul returns the product of a and b.
func Mul[T Number](a, b T) T {
	return a * b
}

// Predict returns Coef*x + Intercept for a new observation x.
func Predict(x float64) float64 {
	// The conversion rounds the product before the add, so no fused
	// multiply-add is emitted.
	return Add(float64(Mul(Coef, x)), Intercept)
}
