package equivalent

// MustNew reports bad references by panicking with a ConversionError, which
// suits callers building many converters in nested helpers. The public facade
// recovers and converts back to an error. Any other panic, runtime errors
// included, is passed on.

type ConversionError struct {
	err error
}

func (e ConversionError) Error() string {
	return e.err.Error()
}

func (e ConversionError) Unwrap() error {
	return e.err
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if conversionError, ok := r.(ConversionError); ok {
			return conversionError.err
		}
		panic(r)
	}
	return nil
}
