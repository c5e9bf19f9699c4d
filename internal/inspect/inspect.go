// Package inspect renders a parsed interchange as XML or JSON for
// operators debugging partner feeds. Both views are read-only
// projections of the envelope tree; nothing here affects protocol
// semantics, and neither output parses back into an interchange.
package inspect

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// XML writes the envelope tree as an indented XML document: one
// interchange element wrapping group, set, segment and element nodes
// in wire order.
func XML(ic *envelope.Interchange) (string, error) {
	if ic == nil {
		return "", fmt.Errorf("interchange is required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("interchange")
	h := ic.Header
	root.CreateAttr("sender", identity(h.SenderQualifier, h.SenderID))
	root.CreateAttr("receiver", identity(h.ReceiverQualifier, h.ReceiverID))
	root.CreateAttr("version", h.Version)
	root.CreateAttr("control", h.ControlNumber)
	root.CreateAttr("usage", h.UsageIndicator)
	root.CreateAttr("date", h.Date)
	root.CreateAttr("time", h.Time)

	for _, g := range ic.Groups {
		ge := root.CreateElement("group")
		ge.CreateAttr("code", g.Header.FunctionalCode)
		ge.CreateAttr("control", g.Header.ControlNumber)
		ge.CreateAttr("version", g.Header.VersionCode)
		for _, set := range g.Sets {
			se := ge.CreateElement("set")
			se.CreateAttr("code", set.Header.Code)
			se.CreateAttr("control", set.Header.ControlNumber)
			for pos, seg := range set.Segments {
				segmentXML(se, seg, pos+1)
			}
		}
	}

	doc.Indent(2)
	return doc.WriteToString()
}

func segmentXML(parent *etree.Element, seg *envelope.Segment, pos int) {
	e := parent.CreateElement("segment")
	e.CreateAttr("id", seg.ID)
	e.CreateAttr("position", strconv.Itoa(pos))
	for i, el := range seg.Elements {
		ee := e.CreateElement("element")
		ee.CreateAttr("position", strconv.Itoa(i+1))
		switch {
		case len(el.Repeats) > 0:
			for _, r := range el.Repeats {
				re := ee.CreateElement("repeat")
				if len(r.Components) > 0 {
					for _, c := range r.Components {
						re.CreateElement("component").SetText(c)
					}
				} else {
					re.SetText(r.Value)
				}
			}
		case len(el.Components) > 0:
			for _, c := range el.Components {
				ee.CreateElement("component").SetText(c)
			}
		default:
			ee.SetText(el.Value)
		}
	}
}

// interchangeView is the JSON projection of an interchange.
type interchangeView struct {
	Sender   string      `json:"sender"`
	Receiver string      `json:"receiver"`
	Version  string      `json:"version"`
	Control  string      `json:"control"`
	Usage    string      `json:"usage"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Groups   []groupView `json:"groups"`
}

type groupView struct {
	Code    string    `json:"code"`
	Control string    `json:"control"`
	Version string    `json:"version,omitempty"`
	Sets    []setView `json:"sets"`
}

type setView struct {
	Code     string        `json:"code"`
	Control  string        `json:"control"`
	Segments []segmentView `json:"segments"`
}

type segmentView struct {
	ID       string        `json:"id"`
	Elements []elementView `json:"elements"`
}

type elementView struct {
	Value      string        `json:"value,omitempty"`
	Components []string      `json:"components,omitempty"`
	Repeats    []elementView `json:"repeats,omitempty"`
}

// elementViewOf projects one element. Split forms drop the raw value:
// either the components or the repeats carry the content.
func elementViewOf(el envelope.Element) elementView {
	if len(el.Repeats) > 0 {
		v := elementView{}
		for _, r := range el.Repeats {
			v.Repeats = append(v.Repeats, elementViewOf(r))
		}
		return v
	}
	if len(el.Components) > 0 {
		return elementView{Components: el.Components}
	}
	return elementView{Value: el.Value}
}

// JSON writes the envelope tree as indented JSON, shaped like the XML
// view.
func JSON(ic *envelope.Interchange) (string, error) {
	if ic == nil {
		return "", fmt.Errorf("interchange is required")
	}

	view := interchangeView{
		Sender:   identity(ic.Header.SenderQualifier, ic.Header.SenderID),
		Receiver: identity(ic.Header.ReceiverQualifier, ic.Header.ReceiverID),
		Version:  ic.Header.Version,
		Control:  ic.Header.ControlNumber,
		Usage:    ic.Header.UsageIndicator,
		Date:     ic.Header.Date,
		Time:     ic.Header.Time,
	}
	for _, g := range ic.Groups {
		gv := groupView{
			Code:    g.Header.FunctionalCode,
			Control: g.Header.ControlNumber,
			Version: g.Header.VersionCode,
		}
		for _, set := range g.Sets {
			sv := setView{Code: set.Header.Code, Control: set.Header.ControlNumber}
			for _, seg := range set.Segments {
				sgv := segmentView{ID: seg.ID}
				for _, el := range seg.Elements {
					sgv.Elements = append(sgv.Elements, elementViewOf(el))
				}
				sv.Segments = append(sv.Segments, sgv)
			}
			gv.Sets = append(gv.Sets, sv)
		}
		view.Groups = append(view.Groups, gv)
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding interchange view: %w", err)
	}
	return string(data), nil
}

func identity(qualifier, id string) string {
	return qualifier + ":" + id
}
