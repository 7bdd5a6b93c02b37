package sessions

import "github.com/reusee/catdraw/vars"

// DisplayText resolves the text to show: explicit text, then the Bluetooth
// status, then the network status, then def
func (d Data) DisplayText(def string) string {
	return vars.FirstNonZero(d.Text, d.Bluetooth, d.Network, def)
}
