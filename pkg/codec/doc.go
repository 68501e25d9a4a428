// Package codec converts between wanted lists and the Bricklink wanted-list
// XML format.
//
// A payload is an XML declaration followed by an INVENTORY root holding one
// ITEM element per wanted item:
//
//	<?xml version="1.0" encoding="UTF-8"?><INVENTORY><ITEM><ITEMTYPE>P</ITEMTYPE><ITEMID>3622</ITEMID><COLOR>11</COLOR><QTYFILLED>4</QTYFILLED></ITEM></INVENTORY>
//
// Enumerations travel as one-letter codes (ITEMTYPE S,P,M,B,G,C,I,O,U;
// CONDITION N,U,C,I,S,X; NOTIFY and WANTEDSHOW Y,N). Absent optional fields
// are omitted on encode and left nil on decode.
//
// Decoding uses antchfx/xmlquery so the declaration and inter-tag whitespace
// are optional. Encoding is compact and canonical: the output of Encode
// decodes back to an equal list, and re-encoding that list gives the same
// bytes.
//
// Older writers nested every item inside one extra ITEM element. ModeLegacy
// reproduces that layout and runs RepairLegacy over it; ModeDirect never
// emits the wrapper. Both modes produce identical text.
package codec
