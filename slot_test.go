// slot_test.go: unit tests for the slot state machine
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "testing"

func TestSlot_PublishTransitionsToOccupied(t *testing.T) {
	var s slot[string, int]
	if !s.state.CompareAndSwap(slotEmpty, slotWriting) {
		t.Fatal("expected to claim a fresh slot")
	}
	s.publish(42, "key", 7)

	if s.state.Load() != slotOccupied {
		t.Errorf("expected slotOccupied, got %d", s.state.Load())
	}
	if s.hash.Load() != 42 {
		t.Errorf("expected hash 42, got %d", s.hash.Load())
	}
	if s.loadKey() != "key" {
		t.Errorf("expected key %q, got %q", "key", s.loadKey())
	}
	if s.loadValue() != 7 {
		t.Errorf("expected value 7, got %d", s.loadValue())
	}
}

func TestSlot_OverwriteKeepsStateOccupied(t *testing.T) {
	var s slot[string, int]
	s.state.CompareAndSwap(slotEmpty, slotWriting)
	s.publish(1, "key", 1)

	s.overwrite(2)

	if s.state.Load() != slotOccupied {
		t.Errorf("expected state to remain slotOccupied, got %d", s.state.Load())
	}
	if s.loadValue() != 2 {
		t.Errorf("expected overwritten value 2, got %d", s.loadValue())
	}
	if s.loadKey() != "key" {
		t.Errorf("expected key to be untouched, got %q", s.loadKey())
	}
}

func TestSlot_EmptyToWritingCASIsExclusive(t *testing.T) {
	var s slot[string, int]
	if !s.state.CompareAndSwap(slotEmpty, slotWriting) {
		t.Fatal("expected the first CAS to win")
	}
	if s.state.CompareAndSwap(slotEmpty, slotWriting) {
		t.Error("expected a second CAS from slotEmpty to fail once already slotWriting")
	}
}
