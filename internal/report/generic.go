package report

// GenericReport returns the hardcoded executive-summary report for the
// download path. It has no stage/country branching and never touches the
// completion provider.
func GenericReport() string {
	return genericReport
}

const genericReport = `# Strategic AI Clarity Report - Executive Summary

## The AI Transformation Imperative

Artificial Intelligence is reshaping business landscapes across Nigeria, the UK, and the US. Organizations that achieve strategic AI clarity gain significant competitive advantages through enhanced efficiency, improved decision-making, and innovative service delivery.

## Strategic AI Implementation Framework

### Phase 1: Foundation Building (0-3 months)
- **AI Readiness Assessment**: Evaluate current capabilities and gaps
- **Strategy Alignment**: Connect AI initiatives to business objectives
- **Team Development**: Build internal AI literacy and expertise
- **Technology Stack**: Select appropriate AI tools and platforms

### Phase 2: Pilot Implementation (3-6 months)
- **Proof of Concept**: Start with low-risk, high-impact use cases
- **Performance Monitoring**: Track ROI and business impact metrics
- **Iterative Improvement**: Refine based on initial results
- **Knowledge Transfer**: Document learnings and best practices

### Phase 3: Scale and Optimize (6-12 months)
- **Enterprise Deployment**: Roll out successful pilots across organization
- **Advanced Applications**: Implement more sophisticated AI solutions
- **Cross-Functional Integration**: Embed AI across business processes
- **Continuous Innovation**: Stay ahead of AI technology trends

## Market-Specific Considerations

### Nigeria
- **Opportunities**: Mobile-first solutions, local language AI, fintech innovation
- **Challenges**: Infrastructure development, talent acquisition
- **Success Factors**: Partnership with local tech ecosystem, gradual implementation

### United Kingdom
- **Opportunities**: Financial services AI, healthcare innovation, manufacturing optimization
- **Challenges**: GDPR compliance, competitive landscape
- **Success Factors**: Regulatory compliance, proven ROI demonstration

### United States
- **Opportunities**: Enterprise AI solutions, consumer applications, research commercialization
- **Challenges**: Intense competition, regulatory complexity
- **Success Factors**: Innovation focus, rapid scaling capabilities

## Risk Mitigation Strategies

1. **Start Small**: Begin with pilot projects to minimize risk
2. **Measure Everything**: Track performance metrics and ROI
3. **Build Expertise**: Invest in team training and development
4. **Stay Compliant**: Ensure regulatory adherence across markets
5. **Plan for Change**: Prepare for organizational transformation

## Next Steps

1. **Assess Your Current Position**: Complete the AI Readiness Assessment
2. **Define Your Strategy**: Clarify business objectives and AI alignment
3. **Start Implementation**: Begin with pilot projects in key areas
4. **Measure and Adjust**: Continuously monitor and refine your approach
5. **Scale Success**: Expand successful initiatives across the organization

---

**Ready for Personalized Guidance?**

Schedule a Strategic Clarity Call to discuss your specific AI implementation needs:
` + bookingURL + `

**About Adenola Adegbesan - The AI Maverick**
Strategic AI clarity coach and business advisor helping leaders navigate AI transformation across Nigeria, UK, and US markets.
`
