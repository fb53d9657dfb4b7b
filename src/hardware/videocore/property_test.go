package videocore

import "testing"

func TestGPIOStateMessage(t *testing.T) {
	m := gpioStateMessage(130, true)
	expected := [gpioStateSlots]uint32{32, 0, 0x00038041, 8, 0, 130, 1, 0}
	if m != expected {
		t.Errorf("expected %v", expected)
		t.Logf("but got  %v", m)
	}
	if gpioStateMessage(130, false)[6] != 0 {
		t.Errorf("expected state slot to be 0 for off")
	}
}

func TestAddressWithChannel(t *testing.T) {
	a, ok := addressWithChannel(0x1000, MailboxChannelProperties)
	if !ok || a != 0x1008 {
		t.Errorf("expected 0x1008, got %x (%v)", a, ok)
	}
	if _, ok := addressWithChannel(0x1004, MailboxChannelProperties); ok {
		t.Errorf("expected unaligned buffer to be refused")
	}
}
