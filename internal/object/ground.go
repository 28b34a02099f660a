package object

// Ground is the line the hero runs on, with a strip of gravel below it.
type Ground struct {
	Y     float64
	Width float64
}

// Update is a no-op; the ground never moves.
func (g *Ground) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders the ground line and evenly spaced gravel.
func (g *Ground) Draw(ctx DrawContext) error {
	ctx.Canvas.HLine(0, g.Width, g.Y)
	for x := 7.0; x < g.Width; x += 23 {
		ctx.Canvas.SetFloat(x, g.Y+12)
	}
	return nil
}
