package resize

// Select maps the combination of sizing options in req to a Method.
// Conditions are evaluated in order and the first match wins.
func Select(req Request) (Method, error) {
	switch {
	case req.Scale != nil && (req.Width != nil || req.Height != nil):
		return 0, ErrConflictingOptions
	case req.Scale != nil:
		return Scale, nil
	case req.Width != nil && req.Height != nil:
		return Linear, nil
	case req.Width != nil:
		return AdjustedHeight, nil
	case req.Height != nil:
		return AdjustedWidth, nil
	default:
		return 0, ErrMissingOptions
	}
}

// Strategy is one of ScaleBy, Exact, FitWidth or FitHeight. Each variant
// carries only the values its computation needs.
type Strategy interface {
	Method() Method
	strategy()
}

// ScaleBy multiplies both source dimensions by Factor.
type ScaleBy struct{ Factor float64 }

// Exact uses Width and Height verbatim.
type Exact struct{ Width, Height int }

// FitWidth fixes the width and derives the height from the source aspect ratio.
type FitWidth struct{ Width int }

// FitHeight fixes the height and derives the width from the source aspect ratio.
type FitHeight struct{ Height int }

func (ScaleBy) Method() Method   { return Scale }
func (Exact) Method() Method     { return Linear }
func (FitWidth) Method() Method  { return AdjustedHeight }
func (FitHeight) Method() Method { return AdjustedWidth }

func (ScaleBy) strategy()   {}
func (Exact) strategy()     {}
func (FitWidth) strategy()  {}
func (FitHeight) strategy() {}

// Plan selects the method for req and binds the request values it needs.
func Plan(req Request) (Strategy, error) {
	m, err := Select(req)
	if err != nil {
		return nil, err
	}
	switch m {
	case Scale:
		return ScaleBy{Factor: *req.Scale}, nil
	case Linear:
		return Exact{Width: *req.Width, Height: *req.Height}, nil
	case AdjustedHeight:
		return FitWidth{Width: *req.Width}, nil
	default:
		return FitHeight{Height: *req.Height}, nil
	}
}
