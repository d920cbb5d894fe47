// refs: github.com/fogleman/nes
package famicore

const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller models the standard pad's 8-bit shift register. While strobe is
// high the register continuously reloads, so reads always return button A.
type Controller struct {
	buttons [8]bool
	index   byte
	strobe  byte
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) SetButtons(buttons [8]bool) {
	c.buttons = buttons
}

func (c *Controller) Read() byte {
	// Upper bits come from the data bus; $40 matches the usual $4016/$4017
	// open-bus value seen on hardware.
	value := byte(0x40)
	if c.index < 8 && c.buttons[c.index] {
		value |= 0x01
	}
	c.index++
	if c.strobe&1 == 1 {
		c.index = 0
	}
	return value
}

func (c *Controller) Write(value byte) {
	c.strobe = value
	if c.strobe&1 == 1 {
		c.index = 0
	}
}
