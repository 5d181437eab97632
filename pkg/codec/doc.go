// Package codec provides fixed-length record serialization for HotelDB.
//
// Every entity kind (Room, Guest, Stay, Keycard) encodes to a constant-size
// byte block so that its position in a data file is simply index * slot size.
// There is no header, checksum, or version marker; the byte layout itself is
// the on-disk contract and must stay compatible with existing data files.
//
// # Record Format
//
// All integers are 32-bit unsigned little-endian. Text fields are UTF-8
// bytes truncated to the field's byte capacity and zero-padded to its exact
// width. Each record is zero-padded at the end up to its declared slot size,
// leaving trailing reserved bytes.
//
//	Room    (64 bytes): [ID(4)][Status(4)][Type(20)][Floor(4)][Capacity(4)][MaxCards(4)][CreatedAt(4)][UpdatedAt(4)][pad(16)]
//	Guest  (112 bytes): [ID(4)][Status(4)][FullName(50)][Phone(15)][IDNo(20)][CreatedAt(4)][UpdatedAt(4)][pad(11)]
//	Stay    (64 bytes): [ID(4)][Status(4)][GuestID(4)][RoomID(4)][CheckinDate(10)][CheckoutDate(10)][CardsIssued(4)][CardsReturned(4)][UpdatedAt(4)][pad(16)]
//	Keycard (32 bytes): [ID(4)][Status(4)][RoomID(4)][Serial(10)][CreatedAt(4)][UpdatedAt(4)][pad(2)]
//
// # Round Trip
//
// Decode(Encode(v)) reproduces every field of v, except text fields whose
// UTF-8 encoding exceeds the field width: those truncate deterministically
// at the byte boundary and never return an error. Decoding strips trailing
// zero bytes from text fields and drops invalid UTF-8 sequences rather than
// failing.
//
// # Timestamps
//
// CreatedAt/UpdatedAt are unix seconds stored as uint32, matching the legacy
// file format.
package codec
