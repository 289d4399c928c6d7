// catalog.go
//
// Transitions for the supporting catalogs: printers, message templates,
// proposals and their templates, QR codes and draft auto-saves.

package store

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/TKNasansor/TKNLIFT/internal/models"
)

// applyAddPrinter registers a printer; at most one printer holds the default
// flag at a time.
func applyAddPrinter(st State, cmd AddPrinter, e stamp) (State, Result) {
	printer := cmd.Printer
	printer.ID = e.newID()

	printers := make([]models.Printer, len(st.Printers))
	for i, p := range st.Printers {
		if printer.IsDefault {
			p.IsDefault = false
		}
		printers[i] = p
	}

	next := st
	next.Printers = append(printers, printer)
	return next, applied()
}

func applyUpdatePrinter(st State, cmd UpdatePrinter, _ stamp) (State, Result) {
	next := st
	printers := make([]models.Printer, len(st.Printers))
	for i, p := range st.Printers {
		if p.ID == cmd.Printer.ID {
			printers[i] = cmd.Printer
			continue
		}
		if cmd.Printer.IsDefault {
			p.IsDefault = false
		}
		printers[i] = p
	}
	next.Printers = printers
	return next, applied()
}

func applyDeletePrinter(st State, cmd DeletePrinter, _ stamp) (State, Result) {
	next := st
	printers := make([]models.Printer, 0, len(st.Printers))
	for _, p := range st.Printers {
		if p.ID != cmd.ID {
			printers = append(printers, p)
		}
	}
	next.Printers = printers
	return next, applied()
}

func applyAddSMSTemplate(st State, cmd AddSMSTemplate, e stamp) (State, Result) {
	template := cmd.Template
	template.ID = e.newID()

	next := st
	next.SMSTemplates = append(append([]models.SMSTemplate{}, st.SMSTemplates...), template)
	return next, applied()
}

func applyUpdateSMSTemplate(st State, cmd UpdateSMSTemplate, _ stamp) (State, Result) {
	next := st
	templates := make([]models.SMSTemplate, len(st.SMSTemplates))
	for i, t := range st.SMSTemplates {
		if t.ID == cmd.Template.ID {
			templates[i] = cmd.Template
		} else {
			templates[i] = t
		}
	}
	next.SMSTemplates = templates
	return next, applied()
}

func applyDeleteSMSTemplate(st State, cmd DeleteSMSTemplate, _ stamp) (State, Result) {
	next := st
	templates := make([]models.SMSTemplate, 0, len(st.SMSTemplates))
	for _, t := range st.SMSTemplates {
		if t.ID != cmd.ID {
			templates = append(templates, t)
		}
	}
	next.SMSTemplates = templates
	return next, applied()
}

// applySendBulkSMS only audits the send; actual delivery happens outside the
// store.
func applySendBulkSMS(st State, cmd SendBulkSMS, e stamp) (State, Result) {
	template, ok := st.findSMSTemplate(cmd.TemplateID)
	if !ok {
		return st, rejected(ReasonTemplateNotFound)
	}

	next := st
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Toplu SMS Gönderildi",
			fmt.Sprintf("%d binaya %q şablonu ile SMS gönderildi.", len(cmd.BuildingIDs), template.Name)))
	return next, applied()
}

// applySendWhatsApp builds one wa.me deep link per building that has contact
// info on file. The links ride on the Result; the store never opens them.
// Phone numbers are stripped to digits and prefixed with the country code.
func applySendWhatsApp(st State, cmd SendWhatsApp, e stamp) (State, Result) {
	template, ok := st.findSMSTemplate(cmd.TemplateID)
	if !ok {
		return st, rejected(ReasonTemplateNotFound)
	}

	var links []string
	for _, id := range cmd.BuildingIDs {
		building, ok := st.findBuilding(id)
		if !ok || building.ContactInfo == "" {
			continue
		}
		phone := digitsOnly(building.ContactInfo)
		if phone == "" {
			continue
		}
		links = append(links, fmt.Sprintf("https://wa.me/90%s?text=%s", phone, url.QueryEscape(template.Content)))
	}

	next := st
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "WhatsApp Mesajları Açıldı",
			fmt.Sprintf("%d bina için %q şablonu ile WhatsApp pencereleri açıldı.", len(cmd.BuildingIDs), template.Name)))

	result := applied()
	result.Links = links
	return next, result
}

func (s State) findSMSTemplate(id string) (models.SMSTemplate, bool) {
	for _, t := range s.SMSTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return models.SMSTemplate{}, false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// applyAddProposal stamps creation metadata server-side; the submitted
// createdDate and createdBy are ignored.
func applyAddProposal(st State, cmd AddProposal, e stamp) (State, Result) {
	proposal := cmd.Proposal
	proposal.ID = e.newID()
	proposal.CreatedDate = e.iso()
	proposal.CreatedBy = st.actor()

	next := st
	next.Proposals = append(append([]models.Proposal{}, st.Proposals...), proposal)
	return next, applied()
}

func applyUpdateProposal(st State, cmd UpdateProposal, _ stamp) (State, Result) {
	next := st
	proposals := make([]models.Proposal, len(st.Proposals))
	for i, p := range st.Proposals {
		if p.ID == cmd.Proposal.ID {
			proposals[i] = cmd.Proposal
		} else {
			proposals[i] = p
		}
	}
	next.Proposals = proposals
	return next, applied()
}

func applyDeleteProposal(st State, cmd DeleteProposal, _ stamp) (State, Result) {
	next := st
	proposals := make([]models.Proposal, 0, len(st.Proposals))
	for _, p := range st.Proposals {
		if p.ID != cmd.ID {
			proposals = append(proposals, p)
		}
	}
	next.Proposals = proposals
	return next, applied()
}

func applyAddProposalTemplate(st State, cmd AddProposalTemplate, e stamp) (State, Result) {
	template := cmd.Template
	template.ID = e.newID()

	next := st
	next.ProposalTemplates = append(append([]models.ProposalTemplate{}, st.ProposalTemplates...), template)
	return next, applied()
}

func applyUpdateProposalTemplate(st State, cmd UpdateProposalTemplate, _ stamp) (State, Result) {
	next := st
	templates := make([]models.ProposalTemplate, len(st.ProposalTemplates))
	for i, t := range st.ProposalTemplates {
		if t.ID == cmd.Template.ID {
			templates[i] = cmd.Template
		} else {
			templates[i] = t
		}
	}
	next.ProposalTemplates = templates
	return next, applied()
}

func applyDeleteProposalTemplate(st State, cmd DeleteProposalTemplate, _ stamp) (State, Result) {
	next := st
	templates := make([]models.ProposalTemplate, 0, len(st.ProposalTemplates))
	for _, t := range st.ProposalTemplates {
		if t.ID != cmd.ID {
			templates = append(templates, t)
		}
	}
	next.ProposalTemplates = templates
	return next, applied()
}

func applyAddQRCode(st State, cmd AddQRCode, e stamp) (State, Result) {
	data := cmd.Data
	if data.ID == "" {
		data.ID = e.newID()
	}

	next := st
	next.QRCodes = append(append([]models.QRCodeData{}, st.QRCodes...), data)
	return next, applied()
}

// applyUpdateAutoSave upserts a draft snapshot by id, newest first.
func applyUpdateAutoSave(st State, cmd UpdateAutoSave, _ stamp) (State, Result) {
	next := st
	drafts := make([]models.AutoSaveData, 0, len(st.AutoSaveData)+1)
	drafts = append(drafts, cmd.Data)
	for _, d := range st.AutoSaveData {
		if d.ID != cmd.Data.ID {
			drafts = append(drafts, d)
		}
	}
	next.AutoSaveData = drafts
	return next, applied()
}
